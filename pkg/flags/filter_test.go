package flags

import (
	"testing"

	"github.com/spf13/cobra"

	"github.com/Paintersrp/notelist/internal/filter"
)

func TestHandleFilter(t *testing.T) {
	tests := []struct {
		args []string
		want filter.Criteria
	}{
		{nil, filter.Criteria{}},
		{[]string{"-q", "go tag:dev"}, filter.Criteria{Query: "go tag:dev"}},
		{[]string{"-t", "work,home", "--trash"}, filter.Criteria{Tags: []string{"work", "home"}, ShowTrash: true}},
	}

	for _, tt := range tests {
		cmd := &cobra.Command{Use: "ls"}
		AddFilter(cmd)
		if err := cmd.ParseFlags(tt.args); err != nil {
			t.Fatalf("ParseFlags(%v) returned error: %v", tt.args, err)
		}
		if got := HandleFilter(cmd); !got.Equal(tt.want) {
			t.Fatalf("args %v: expected %+v, got %+v", tt.args, tt.want, got)
		}
	}
}
