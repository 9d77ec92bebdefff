package model

import (
	"fmt"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Language identifies a supported source language.
type Language string

const (
	LangJava Language = "java"
)

// FileExtension returns the source file extension of lang, or "" when unknown.
func (lang Language) FileExtension() string {
	switch lang {
	case LangJava:
		return ".java"
	default:
		return ""
	}
}

var langMap = make(map[Language]*sitter.Language)

// RegisterLanguage registers the tree-sitter grammar of lang.
func RegisterLanguage(lang Language, tsLang *sitter.Language) {
	langMap[lang] = tsLang
}

// GetLanguage returns the registered tree-sitter grammar of lang.
func GetLanguage(lang Language) (*sitter.Language, error) {
	tsLang, ok := langMap[lang]
	if !ok {
		return nil, fmt.Errorf("language %s not registered", lang)
	}

	return tsLang, nil
}
