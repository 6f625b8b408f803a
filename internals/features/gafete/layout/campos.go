// Package layout implementa el motor de diseño del gafete: layout por
// defecto + merge del diseño guardado, validación de payloads del editor
// y rasterización a JPEG.
package layout

// Campo es una llave del vocabulario cerrado de campos del gafete.
type Campo string

const (
	CampoPhoto            Campo = "photo"
	CampoNombres          Campo = "nombres"
	CampoApellidos        Campo = "apellidos"
	CampoCodigoAlumno     Campo = "codigo_alumno"
	CampoGrado            Campo = "grado"
	CampoGradoDescripcion Campo = "grado_descripcion"
	CampoSitioWeb         Campo = "sitio_web"
	CampoTelefono         Campo = "telefono"
	CampoCUI              Campo = "cui"
	CampoEstablecimiento  Campo = "establecimiento"
)

// Campos en orden estable de dibujo.
var Campos = []Campo{
	CampoPhoto,
	CampoNombres,
	CampoApellidos,
	CampoCodigoAlumno,
	CampoGrado,
	CampoGradoDescripcion,
	CampoSitioWeb,
	CampoTelefono,
	CampoCUI,
	CampoEstablecimiento,
}

// CampoValido reporta si key pertenece al vocabulario.
func CampoValido(key string) bool {
	for _, c := range Campos {
		if string(c) == key {
			return true
		}
	}
	return false
}
