package entity

import (
	"time"
)

type Base struct {
	ID        int       `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}

type BaseSimple struct {
	ID int `db:"id"`
}
