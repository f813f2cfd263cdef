package handler

type ConsultaRequest struct {
	Query string `json:"query" binding:"required"`
}

type ConsultaResponse struct {
	Response string `json:"response"`
}
