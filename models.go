package main

// ModelList Groq /openai/v1/models 端点的响应结构
// Data 保持为 any 切片：个别端点会混入非对象条目，
// 提取时跳过而不是让整个响应解析失败
type ModelList struct {
	Object string `json:"object"`
	Data   []any  `json:"data"`
}

// ModelIDs 按响应顺序提取非空模型标识符
// 只保留对象类型且带有非空 id 字段的条目，其余跳过
func (l ModelList) ModelIDs() []string {
	ids := make([]string, 0, len(l.Data))
	for _, entry := range l.Data {
		entryMap, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		if id, ok := entryMap["id"].(string); ok && id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
