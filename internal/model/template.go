package model

// CategoryRef is the short form of a category embedded in assets.
type CategoryRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Template is a meme template as listed by the API.
type Template struct {
	ID         int          `json:"id"`
	Name       string       `json:"name"`
	ImageURL   string       `json:"image_url"`
	CategoryID *int         `json:"category_id,omitempty"`
	Category   *CategoryRef `json:"category,omitempty"`
	CreatedAt  string       `json:"created_at"`
}

// TemplateDetail is a template including its field regions, i.E. the places
// where content is expected to go.
type TemplateDetail struct {
	Template
	Fields []TemplateField `json:"fields"`
}

// TemplateField is a named region of a template.
type TemplateField struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	XPos          float64 `json:"x_pos"`
	YPos          float64 `json:"y_pos"`
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	DefaultFontID *int    `json:"default_font_id,omitempty"`
	DefaultColor  *string `json:"default_color,omitempty"`
}

// Field returns the template field with the given name, if present.
func (t *TemplateDetail) Field(name string) (TemplateField, bool) {
	if t == nil {
		return TemplateField{}, false
	}
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return TemplateField{}, false
}
