package guard

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "no marker", args: []string{"--path", "/home"}, want: "redirect_login /login\n"},
		{name: "marker on login", args: []string{"--path", "/login", "--marker", "admin"}, want: "redirect_home /home\n"},
		{name: "logout", args: []string{"--path", "/logout", "--marker", "user"}, want: "logout /login\n"},
		{name: "pass", args: []string{"--path", "/data/client", "--marker", "user"}, want: "pass\n"},
		{name: "excluded", args: []string{"--path", "/static/main.css"}, want: "pass\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			Decide.SetOut(&out)
			Decide.SetArgs(tt.args)
			require.NoError(t, Decide.Flags().Set("marker", ""))
			require.NoError(t, Decide.Execute())
			assert.Equal(t, tt.want, out.String())
		})
	}
}
