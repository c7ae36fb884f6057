package migrations

import (
	"context"
	"fmt"
)

type migration struct {
	name string
	run  func(context.Context) error
}

var all = []migration{
	{"001_add_scripts_field", AddScriptsField},
	{"002_create_patient_name_index", CreatePatientNameIndex},
}

// Run applies every migration in order and stops at the first failure. Each
// one is safe to re-run.
func Run(ctx context.Context) error {
	for _, m := range all {
		if err := m.run(ctx); err != nil {
			return fmt.Errorf("migration %s: %w", m.name, err)
		}
	}
	return nil
}
