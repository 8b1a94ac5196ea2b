package model

type Setting struct {
	Key       string `json:"key" gorm:"primaryKey;size:64"`
	Value     string `json:"value"`
	Desc      string `json:"desc"`
	Category  string `json:"category"`
	Sensitive bool   `json:"sensitive" gorm:"default:false"`
}
