package helper

import "testing"

func TestGafeteFilename(t *testing.T) {
	tests := []struct {
		name      string
		apellidos string
		nombres   string
		codigo    string
		want      string
	}{
		{
			name:      "simple",
			apellidos: "Garcia", nombres: "Pedro", codigo: "A123",
			want: "GAFETE_GARCIA_PEDRO_A123.jpg",
		},
		{
			name:      "tildes y eñes",
			apellidos: "Muñoz Pérez", nombres: "María José", codigo: "b-45",
			want: "GAFETE_MUNOZ_PEREZ_MARIA_JOSE_B_45.jpg",
		},
		{
			name:      "runs de separadores colapsan",
			apellidos: "de  la   Cruz", nombres: "Juan--Luis", codigo: "77",
			want: "GAFETE_DE_LA_CRUZ_JUAN_LUIS_77.jpg",
		},
		{
			name:      "tokens vacíos caen a NA",
			apellidos: "", nombres: "   ", codigo: "¡¡¡",
			want: "GAFETE_NA_NA_NA.jpg",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GafeteFilename(tt.apellidos, tt.nombres, tt.codigo); got != tt.want {
				t.Errorf("GafeteFilename() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Instituto Nacional Central", want: "instituto-nacional-central"},
		{in: "  Perito   Contador  ", want: "perito-contador"},
		{in: "4to. Bachillerato (A)", want: "4to-bachillerato-a"},
		{in: "---", want: ""},
	}
	for _, tt := range tests {
		if got := GenerateSlug(tt.in); got != tt.want {
			t.Errorf("GenerateSlug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
