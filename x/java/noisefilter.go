package java

import "strings"

var (
	noisePrefixes = []string{
		"java.", "javax.", "jdk.", "sun.", "com.sun.", "lombok.",
		"org.slf4j.", "org.apache.log4j.", "org.apache.logging.",
	}
	primitives = map[string]bool{
		"boolean": true, "byte": true, "char": true, "short": true, "int": true,
		"long": true, "float": true, "double": true, "void": true, "var": true,
		"String": true, "Object": true,
	}
)

type NoiseFilter struct{}

func NewJavaNoiseFilter() *NoiseFilter {
	return &NoiseFilter{}
}

func (f *NoiseFilter) IsNoise(qn string) bool {
	if primitives[qn] {
		return true
	}
	for _, p := range noisePrefixes {
		if strings.HasPrefix(qn, p) {
			return true
		}
	}
	return false
}
