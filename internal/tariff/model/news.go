package model

import "time"

// NewsArticle represents a regulatory news item published through the portal.
type NewsArticle struct {
	BaseModel
	Title       string    `gorm:"type:varchar(255);column:title;not null" json:"title"`
	Summary     string    `gorm:"type:text;column:summary" json:"summary"`
	Body        string    `gorm:"type:text;column:body" json:"body"`
	Category    string    `gorm:"type:varchar(50);column:category;index" json:"category"` // e.g. "dumping", "fta", "tco"
	PublishedAt time.Time `gorm:"type:timestamptz;column:published_at;not null;index" json:"publishedAt"`
	SourceURL   string    `gorm:"type:varchar(512);column:source_url" json:"sourceUrl,omitempty"`
	DocumentKey string    `gorm:"type:varchar(255);column:document_key" json:"documentKey,omitempty"` // attachment in document storage
}

func (n *NewsArticle) TableName() string {
	return "news_articles"
}

// NewsFilter is used when querying news articles as a batch
type NewsFilter struct {
	Category *string `json:"category,omitempty"`
	Offset   *int    `json:"offset,omitempty"`
	Limit    *int    `json:"limit,omitempty"`
}
