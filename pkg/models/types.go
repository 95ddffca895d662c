package models

import "time"

type Draft struct {
	Name     string
	Path     string
	Content  string
	Modified time.Time
	Archived bool
}
