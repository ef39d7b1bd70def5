package bytesutil

import "fmt"

const (
	KIBI int64 = 1 << 10 // 2 power 10
	MEBI       = KIBI << 10
	GIBI       = MEBI << 10
	TEBI       = GIBI << 10
	PEBI       = TEBI << 10
	EXBI       = PEBI << 10
)

// BinaryFormat renders a byte count in binary units for transfer
// diagnostics. Negative sizes render as an empty string.
func BinaryFormat(size int64) string {
	if size < 0 {
		return ""
	} else if size < KIBI {
		return fmt.Sprintf("%d B", size)
	} else if size < MEBI {
		return fmt.Sprintf("%.2f KiB", float64(size)/float64(KIBI))
	} else if size < GIBI {
		return fmt.Sprintf("%.2f MiB", float64(size)/float64(MEBI))
	} else if size < TEBI {
		return fmt.Sprintf("%.2f GiB", float64(size)/float64(GIBI))
	} else if size < PEBI {
		return fmt.Sprintf("%.2f TiB", float64(size)/float64(TEBI))
	} else if size < EXBI {
		return fmt.Sprintf("%.2f PiB", float64(size)/float64(PEBI))
	} else {
		return fmt.Sprintf("%.2f EiB", float64(size)/float64(EXBI))
	}
}
