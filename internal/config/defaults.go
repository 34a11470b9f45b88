package config

// DefaultTitle heads the document and names it in the PDF metadata.
const DefaultTitle = "Family Birthdays and Anniversaries"

// DefaultConfig returns a Config populated with all default values.
func DefaultConfig() *Config {
	return &Config{
		Document: DocumentConfig{
			Title:          DefaultTitle,
			PageSize:       "Letter",
			FontFamily:     "Helvetica",
			TitleSize:      18,
			HeadingSize:    12,
			BodySize:       10,
			SectionSpacing: 0.2,
			Margin:         1.0,
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}
