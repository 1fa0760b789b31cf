package response

import (
	"github.com/jinzhu/copier"
)

// copyFields copies same-named fields from a read view. Field name clashes
// with different types are a programming error.
func copyFields(dst, src any) {
	if err := copier.Copy(dst, src); err != nil {
		panic("response: " + err.Error())
	}
}
