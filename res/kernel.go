package res

// formats accumulates one entry per resource format via each format
// file's init(), mirroring the way repparser.Sections lists every
// section in one place — here the registration is spread across files
// (one per Kind) since each format has an independently testable
// Parse/Serialize pair.
var formats []*format

func registerFormat(f *format) {
	formats = append(formats, f)
}
