package nationality

import (
	"database/sql/driver"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Scan implements sql.Scanner. NULL scans to the absent nationality; string
// and []byte sources scan to their code. Any other source type is a usage
// error.
func (n *Nationality) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		n.code = ""
	case string:
		n.code = v
	case []byte:
		n.code = string(v)
	default:
		return fmt.Errorf("nationality: cannot scan %T", src)
	}
	return nil
}

// Value implements driver.Valuer. The database receives the plain code
// string, never the wrapper; the absent nationality is stored as NULL.
func (n Nationality) Value() (driver.Value, error) {
	if n.code == "" {
		return nil, nil
	}
	return n.code, nil
}

// GormDataType reports the generic data type so gorm's schema parser treats
// the field like any other string column.
func (Nationality) GormDataType() string {
	return "string"
}

// GormDBDataType declares the column as fixed-width 2-character text, so
// migrators introspect the field exactly like a plain char column.
func (Nationality) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	switch db.Dialector.Name() {
	case "sqlite":
		return "text"
	default:
		return "char(2)"
	}
}
