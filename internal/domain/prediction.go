package domain

// Prediction é a quantidade prevista de um item para o próximo mês
type Prediction struct {
	EntityID     string `json:"item_code"`
	PredictedQty int    `json:"predicted_qty"`
}

// PredictionError é o payload emitido quando a previsão falha
type PredictionError struct {
	Error string `json:"error"`
}
