package query

type UserLocationResult struct {
	PermanentLocation string `json:"permanentLocation"`
}
