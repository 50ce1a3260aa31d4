// AngelaMos | 2026
// csv_test.go

package report

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCSVBillsContract(t *testing.T) {
	header := []string{"Member Email", "Amount", "Due Date", "Status", "Notes"}
	rows := [][]string{
		{"a@x.com", "100", "", "unpaid", ""},
	}

	want := `"Member Email","Amount","Due Date","Status","Notes"` + "\n" +
		`"a@x.com","100","","unpaid",""`

	require.Equal(t, want, CSV(header, rows))
}

func TestCSVDoublesInternalQuotes(t *testing.T) {
	got := CSV([]string{"Notes"}, [][]string{{`say "hi"`}})
	require.Equal(t, `"Notes"`+"\n"+`"say ""hi"""`, got)
}

func TestCSVHeaderOnly(t *testing.T) {
	got := CSV([]string{"Name", "Email"}, nil)
	require.Equal(t, `"Name","Email"`, got)
}

func TestCSVQuotesCommasAndNewlines(t *testing.T) {
	got := CSV([]string{"Notes"}, [][]string{{"a,b\nc"}})
	require.Equal(t, `"Notes"`+"\n"+"\"a,b\nc\"", got)
}
