package entity

import "time"

// Draft 表单草稿快照，每个用户保留最近一份
type Draft struct {
	StartupName string    `json:"startup_name"`
	Industry    string    `json:"industry"`
	Problem     string    `json:"problem"`
	Solution    string    `json:"solution"`
	Audience    string    `json:"audience"`
	PitchType   string    `json:"pitch_type"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IsEmpty 判断草稿是否所有字段均为空
func (d *Draft) IsEmpty() bool {
	return d.StartupName == "" && d.Industry == "" && d.Problem == "" &&
		d.Solution == "" && d.Audience == "" && d.PitchType == ""
}

// Validate 校验表单内容，返回字段到错误信息的映射，空映射表示通过。
// problem/solution 为可选字段，填写后才检查最短长度。
func (d *Draft) Validate() map[string]string {
	errs := make(map[string]string)
	if d.StartupName == "" {
		errs["startup_name"] = "Startup Name is required"
	}
	if d.Industry == "" {
		errs["industry"] = "Industry is required"
	}
	if d.PitchType == "" {
		errs["pitch_type"] = "Pitch Type is required"
	} else if !PitchType(d.PitchType).IsValid() {
		errs["pitch_type"] = "Pitch Type must be one of elevator, investor, competition"
	}
	if d.Problem != "" && len([]rune(d.Problem)) < 10 {
		errs["problem"] = "Problem must be at least 10 characters"
	}
	if d.Solution != "" && len([]rune(d.Solution)) < 10 {
		errs["solution"] = "Solution must be at least 10 characters"
	}
	return errs
}
