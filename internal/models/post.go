package models

import (
	"html/template"
	"time"
)

type Post struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Title      string     `gorm:"size:255;not null" json:"title"`
	Content    string     `gorm:"type:text;not null" json:"content"`
	Author     string     `gorm:"size:100;not null;index" json:"author"`
	Likes      uint       `gorm:"not null;default:0" json:"likes"`
	Dislikes   uint       `gorm:"not null;default:0" json:"dislikes"`
	Categories []Category `gorm:"many2many:post_categories;" json:"-"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	// 非数据库字段，序列化时填充
	CategoryIDs []uint        `gorm:"-" json:"categories"`
	ContentHTML template.HTML `gorm:"-" json:"content_html"`
}
