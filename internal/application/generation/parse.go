package generation

import (
	"encoding/json"
	"strings"

	"pitchcraft-ai-api/internal/domain/entity"
)

// Variant 单个生成变体
type Variant struct {
	Kind entity.VariantKind
	Text string
}

// rawVariant 模型输出中的变体条目
type rawVariant struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ParseVariants 解析模型输出为三个变体。
// 返回值第二项标记是否走了切片兜底路径。
func ParseVariants(raw string) ([]Variant, bool) {
	candidate := extractJSONArray(raw)

	var items []rawVariant
	if err := json.Unmarshal([]byte(candidate), &items); err != nil || len(items) < len(entity.AllVariantKinds) {
		return fallbackVariants(raw), true
	}

	picked := items[:len(entity.AllVariantKinds)]

	// 第一轮：按模型给出的名字分配，重复和未命中的先留空
	kinds := make([]entity.VariantKind, len(picked))
	used := make(map[entity.VariantKind]bool)
	for i, item := range picked {
		kind := normalizeKind(item.Type)
		if kind == "" || used[kind] {
			continue
		}
		kinds[i] = kind
		used[kind] = true
	}

	// 第二轮：留空的位置按固定顺序补上缺失的类别，保证三种各一个
	for i := range kinds {
		if kinds[i] != "" {
			continue
		}
		for _, kind := range entity.AllVariantKinds {
			if !used[kind] {
				kinds[i] = kind
				used[kind] = true
				break
			}
		}
	}

	variants := make([]Variant, 0, len(picked))
	for i, item := range picked {
		variants = append(variants, Variant{Kind: kinds[i], Text: item.Text})
	}
	return variants, false
}

// extractJSONArray 从可能夹杂其它文本的输出中截取第一个 JSON 数组
func extractJSONArray(s string) string {
	raw := strings.TrimSpace(s)
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start >= 0 && end > start {
		return raw[start : end+1]
	}
	return raw
}

// normalizeKind 将模型输出的类型名归一到固定集合，未命中返回空
func normalizeKind(s string) entity.VariantKind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "formal":
		return entity.VariantFormal
	case "storytelling", "story-telling", "story telling":
		return entity.VariantStorytelling
	case "data-driven", "data driven", "data_driven":
		return entity.VariantDataDriven
	}
	return ""
}

// fallbackVariants 非 JSON 输出时按固定区间切片，保证仍产出三个变体
func fallbackVariants(raw string) []Variant {
	runes := []rune(raw)
	variants := make([]Variant, 0, len(entity.AllVariantKinds))
	for i, kind := range entity.AllVariantKinds {
		variants = append(variants, Variant{
			Kind: kind,
			Text: sliceRunes(runes, i*150, (i+1)*150) + "...",
		})
	}
	return variants
}

func sliceRunes(runes []rune, start, end int) string {
	if start > len(runes) {
		start = len(runes)
	}
	if end > len(runes) {
		end = len(runes)
	}
	return string(runes[start:end])
}
