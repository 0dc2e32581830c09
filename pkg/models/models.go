package models

import "strconv"

type Tag struct {
	Name string `json:"name" yaml:"name"`
}

type Project struct {
	Id              int64   `json:"id" yaml:"id"`
	Slug            string  `json:"slug,omitempty" yaml:"slug,omitempty"`
	Title           string  `json:"title" yaml:"title"`
	Description     string  `json:"description" yaml:"description"`
	FullDescription string  `json:"full_description,omitempty" yaml:"full_description,omitempty"`
	Category        string  `json:"category" yaml:"category"`
	Icon            *string `json:"icon" yaml:"icon,omitempty"`
	Link            string  `json:"link,omitempty" yaml:"link,omitempty"`
	Client          string  `json:"client" yaml:"client,omitempty"`
	Date            string  `json:"date,omitempty" yaml:"date,omitempty"`
	Tags            []Tag   `json:"tags" yaml:"tags,omitempty"`
	Featured        bool    `json:"featured" yaml:"featured,omitempty"`
	Thumbnail       string  `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
}

// Ref is the path segment a project is addressed by: the slug when the
// backend assigned one, the numeric id otherwise.
func (p Project) Ref() string {
	if p.Slug != "" {
		return p.Slug
	}
	return strconv.FormatInt(p.Id, 10)
}

type Social struct {
	Platform string `json:"platform" yaml:"platform"`
	Url      string `json:"url" yaml:"url"`
	Icon     string `json:"icon" yaml:"icon,omitempty"`
}

type TeamMember struct {
	Id      int64    `json:"id" yaml:"id"`
	Name    string   `json:"name" yaml:"name"`
	Role    string   `json:"role" yaml:"role"`
	Avatar  string   `json:"avatar" yaml:"avatar,omitempty"`
	Socials []Social `json:"socials" yaml:"socials,omitempty"`
}

type Testimonial struct {
	Id       int64  `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Position string `json:"position" yaml:"position"`
	Company  string `json:"company" yaml:"company"`
	Avatar   string `json:"avatar" yaml:"avatar,omitempty"`
	Content  string `json:"content" yaml:"content"`
	Rating   int    `json:"rating,omitempty" yaml:"rating,omitempty"`
	Featured bool   `json:"featured,omitempty" yaml:"featured,omitempty"`
	Date     string `json:"date,omitempty" yaml:"date,omitempty"`
}

type Company struct {
	Id     int64  `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Logo   string `json:"logo" yaml:"logo,omitempty"`
	Invert bool   `json:"invert" yaml:"invert,omitempty"`
}

type TechItem struct {
	Name string `json:"name" yaml:"name"`
	Icon string `json:"icon" yaml:"icon,omitempty"`
}

// TechData groups tech stack entries by category.
type TechData map[string][]TechItem
