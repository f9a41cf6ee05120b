package main

import "slices"

// selectCompatibleModel 按偏好列表的优先级顺序扫描，返回第一个可用的模型
// 决定顺序的是偏好列表的下标，与可用列表中的位置无关
// 无匹配时返回 ("", false)，由调用方决定如何处理
func selectCompatibleModel(logger Logger, preferred, available []string) (string, bool) {
	for _, model := range preferred {
		if slices.Contains(available, model) {
			logger.Info("Compatible model found: %s", model)
			return model, true
		}
	}
	return "", false
}
