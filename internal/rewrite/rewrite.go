package rewrite

import (
	"regexp"
	"strings"
)

var (
	// colorsImportRegex matches an import statement where Colors is the
	// first named import after the opening brace.
	colorsImportRegex = regexp.MustCompile(`import \{ Colors,`)

	// constantsImportRegex captures a whole import statement from the
	// constants module, so Colors can be stripped from its import list.
	constantsImportRegex = regexp.MustCompile(`import \{[^}]*\} from '@/src/constants';`)

	// hookPointRegex finds the first destructuring assignment inside the
	// exported default component, before any nested block. A `}` between the
	// function declaration and the first `const {` defeats the match.
	hookPointRegex = regexp.MustCompile(`(export default function \w+\(\) \{[^}]*?)(const \{)`)

	colorsRefRegex = regexp.MustCompile(`\bColors\.`)
)

const themeImport = "import { useTheme } from '@/src/contexts/ThemeContext';\nimport {"

// Apply runs the migration steps over content, in order, and returns the
// result. Steps that find nothing to match leave the text unchanged.
func Apply(content string) string {
	content = replaceColorsImport(content)
	content = stripConstantsImport(content)
	content = insertThemeHook(content)
	content = replaceColorReferences(content)
	return content
}

// replaceColorsImport swaps the leading Colors import for the useTheme
// import, keeping the rest of the original import list.
func replaceColorsImport(content string) string {
	return colorsImportRegex.ReplaceAllString(content, themeImport)
}

// stripConstantsImport removes the Colors token from constants-module import
// lists. Only one surface form is removed per matched statement.
func stripConstantsImport(content string) string {
	return constantsImportRegex.ReplaceAllStringFunc(content, func(stmt string) string {
		if strings.Contains(stmt, ", Colors") {
			return strings.ReplaceAll(stmt, ", Colors", "")
		}
		return strings.ReplaceAll(stmt, "Colors, ", "")
	})
}

// insertThemeHook places the useTheme call before the component's first
// destructuring assignment. At most one insertion per file.
func insertThemeHook(content string) string {
	loc := hookPointRegex.FindStringSubmatchIndex(content)
	if loc == nil {
		return content
	}
	at := loc[4] // start of the `const {` group
	return content[:at] + "const { colors } = useTheme();\n  " + content[at:]
}

// replaceColorReferences rewrites every Colors. member access to colors.,
// word-boundary delimited so longer identifiers pass through.
func replaceColorReferences(content string) string {
	return colorsRefRegex.ReplaceAllString(content, "colors.")
}
