package generation

import "fmt"

// promptTemplate 生成提示词模板。
// 措辞会影响模型按 JSON 数组输出的稳定性，改动前先在目标模型上验证。
const promptTemplate = "Generate three %s pitches (formal, storytelling, data-driven) for a startup named %s in the %s industry. " +
	"The problem is: %s. The solution is: %s. Target audience: %s. " +
	"Each pitch should be 100-150 words, concise, and compelling. " +
	"Return the pitches as a JSON array with objects containing 'type' and 'text' fields."

// BuildPrompt 根据表单内容构造提示词
func BuildPrompt(req *Request) string {
	return fmt.Sprintf(promptTemplate,
		req.PitchType, req.StartupName, req.Industry,
		req.Problem, req.Solution, req.Audience)
}
