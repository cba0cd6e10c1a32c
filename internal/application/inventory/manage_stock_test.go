package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-finder/internal/application/inventory"
)

func TestConfigManageStock(t *testing.T) {
	cases := []struct {
		name    string
		value   *string
		def     bool
		want    bool
		wantErr bool
	}{
		{name: "sin fila usa el valor por defecto", value: nil, def: true, want: true},
		{name: "sin fila con defecto apagado", value: nil, def: false, want: false},
		{name: "uno", value: ptr("1"), def: false, want: true},
		{name: "cero", value: ptr("0"), def: true, want: false},
		{name: "vacío es apagado", value: ptr(" "), def: true, want: false},
		{name: "valor inválido", value: ptr("quizá"), def: true, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFakeInventory()
			if tc.value != nil {
				f.config[inventory.ManageStockConfigPath] = *tc.value
			}
			got, err := inventory.NewConfigManageStock(f, tc.def).IsManageStock(context.Background())
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func ptr(s string) *string { return &s }
