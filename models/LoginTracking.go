package models

import (
	"gorm.io/gorm"
)

type LoginTracking struct {
	gorm.Model
	UserID    uint   `json:"user_id"`
	IPAddress string `json:"ip_address"`
	Device    string `json:"device"`
	Success   bool   `json:"success" gorm:"default:true"`
	IsDeleted bool   `gorm:"default:false"`
}
