package stage

import "github.com/rpggio/stageboard/internal/patch"

// Storage columns for stages.
const (
	ColumnID      = "id"
	ColumnName    = "name"
	ColumnRemarks = "remarks"
)

// Fields is the update whitelist for stages.
var Fields = patch.NewWhitelist(
	patch.Field{Name: "name", Column: ColumnName},
	patch.Field{Name: "remarks", Column: ColumnRemarks},
)

// Columns lists every persisted stage column, id first.
func Columns() []string {
	return append([]string{ColumnID}, Fields.Columns()...)
}

// Values returns the persisted values of st in Columns order.
func (st *Stage) Values() []any {
	return []any{st.ID, st.Name, st.Remarks}
}

// ScanTargets returns pointers to st's fields in Columns order.
func (st *Stage) ScanTargets() []any {
	return []any{&st.ID, &st.Name, &st.Remarks}
}
