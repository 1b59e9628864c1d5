package resume

import "encoding/json"

type fieldUpdateRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

type valueRequest struct {
	Value string `json:"value"`
}

type skillUpdateRequest struct {
	Field string          `json:"field" binding:"required,oneof=name level"`
	Value json.RawMessage `json:"value" binding:"required"`
}

type layoutUpdateRequest struct {
	Field string          `json:"field" binding:"required,oneof=sectionGap skillsMode"`
	Value json.RawMessage `json:"value" binding:"required"`
}

type reorderRequest struct {
	From *int `json:"from" binding:"required"`
	To   *int `json:"to" binding:"required"`
}

type sectionOrderRequest struct {
	Order []string `json:"order" binding:"required"`
}

type activeItemRequest struct {
	ID *string `json:"id"`
}

type duplicateRequest struct {
	Kind string `json:"kind" binding:"required,oneof=experience education"`
	ID   string `json:"id" binding:"required"`
}
