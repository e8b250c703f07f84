package seed

// File is the top-level structure of records.yaml: record entries grouped
// by course code.
type File struct {
	Courses map[string][]RecordProps `yaml:"courses"`
}

// RecordProps is one seed record entry as written in the YAML file.
type RecordProps struct {
	AgeGroup string `yaml:"age_group"`
	Sex      string `yaml:"sex"`
	Distance int    `yaml:"distance"`
	Stroke   string `yaml:"stroke"`
	Time     string `yaml:"time"`
	Holder   string `yaml:"holder"`
	Club     string `yaml:"club,omitempty"`
	SetAt    string `yaml:"set_at,omitempty"` // "2006-01-02"
}
