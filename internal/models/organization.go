package models

import "time"

type Organization struct {
	ID          int64     `db:"org_id" json:"org_id"`
	CompanyName string    `db:"company_name" json:"company_name"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
