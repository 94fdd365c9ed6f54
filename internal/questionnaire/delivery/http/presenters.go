package http

import "depression-srv/internal/model"

// questionResp mirrors the stored document; the client reads type and data only.
type questionResp = model.Question

func (h *handler) newListResp(questions []model.Question) []questionResp {
	if questions == nil {
		return []questionResp{}
	}
	return questions
}
