package models

// VaultStats is the aggregate summary of the whole vault.
type VaultStats struct {
	Total      int            `json:"total"`
	Favorites  int            `json:"favorites"`
	Categories map[string]int `json:"categories"`
	// HealthScore is a 0-100 metric penalizing reused and short passwords.
	HealthScore int `json:"healthScore"`
}
