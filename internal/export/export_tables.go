package export

// Table is an exportable table and the columns it exposes, in sheet order.
type Table struct {
	Name    string
	Columns []string
}

// Tables maps the public report name to its table. Anything else is rejected
// before a query is built.
var Tables = map[string]Table{
	"payroll": {
		Name:    "payroll",
		Columns: []string{"id", "employee", "month", "base_salary", "pf", "esic", "total_salary", "created_by", "created_at"},
	},
	"attendance": {
		Name:    "attendance",
		Columns: []string{"id", "employee", "date", "present", "leave_type", "created_by", "created_at"},
	},
	"exits": {
		Name:    "exits",
		Columns: []string{"id", "employee", "exit_date", "reason", "created_by", "created_at"},
	},
}
