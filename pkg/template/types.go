package template

import "strings"

// Vars are the values manifest strings can reference.
type Vars struct {
	Project      string
	ProjectLower string
	Company      string
}

func NewVars(project, company string) Vars {
	return Vars{
		Project:      project,
		ProjectLower: strings.ToLower(project),
		Company:      company,
	}
}

type CopyEntry struct {
	Src string `yaml:"src"`
	Dst string `yaml:"dst"`
}

type Substitution struct {
	File    string `yaml:"file"`
	Find    string `yaml:"find"`
	Replace string `yaml:"replace"`
}

type Manifest struct {
	Name           string         `yaml:"name"`
	Description    string         `yaml:"description,omitempty"`
	DefaultCompany string         `yaml:"default_company"`
	FoldCompanies  []string       `yaml:"fold_companies,omitempty"`
	Permissions    string         `yaml:"permissions"`
	BackupSuffix   string         `yaml:"backup_suffix"`
	Trees          []CopyEntry    `yaml:"trees"`
	Files          []CopyEntry    `yaml:"files"`
	Substitutions  []Substitution `yaml:"substitutions"`
}

// Plan is a manifest with every path and replacement resolved for one project.
type Plan struct {
	Trees         []CopyEntry
	Files         []CopyEntry
	Substitutions []Substitution
}
