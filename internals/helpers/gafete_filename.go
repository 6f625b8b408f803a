package helper

import (
	"fmt"
	"regexp"
	"strings"
)

var reNonAlnum = regexp.MustCompile(`[^A-Za-z0-9]+`)

// tildes y eñes → ASCII; el resto de runas fuera de ASCII se descarta
// y colapsa en "_" junto con cualquier separador.
var translit = map[rune]string{
	'á': "a", 'é': "e", 'í': "i", 'ó': "o", 'ú': "u", 'ü': "u", 'ñ': "n",
	'Á': "A", 'É': "E", 'Í': "I", 'Ó': "O", 'Ú': "U", 'Ü': "U", 'Ñ': "N",
}

func transliterate(s string) string {
	var b strings.Builder
	for _, r := range s {
		if rep, ok := translit[r]; ok {
			b.WriteString(rep)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func filenameToken(s string) string {
	s = transliterate(strings.TrimSpace(s))
	s = reNonAlnum.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if s == "" {
		return "NA"
	}
	return strings.ToUpper(s)
}

// GafeteFilename arma el nombre de descarga:
// GAFETE_<APELLIDOS>_<NOMBRES>_<CODIGO>.jpg
func GafeteFilename(apellidos, nombres, codigo string) string {
	return fmt.Sprintf("GAFETE_%s_%s_%s.jpg",
		filenameToken(apellidos),
		filenameToken(nombres),
		filenameToken(codigo),
	)
}
