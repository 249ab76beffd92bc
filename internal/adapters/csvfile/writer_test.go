package csvfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"speakerexport/internal/domain"
)

func TestWriter_Write(t *testing.T) {
	t.Run("writes header and rows with empty fields for missing values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "speakers.csv")
		rows := []domain.OutputRow{
			{
				FullName:     "Ada Lovelace",
				SessionTitle: "On Engines",
				LinkedIn:     "https://linkedin.com/in/ada",
			},
			{
				FullName:     "Grace Hopper",
				SessionTitle: "Compilers",
				RecordingURL: "https://youtu.be/abc",
				Twitter:      "https://x.com/grace",
			},
		}

		require.NoError(t, NewWriter().Write(path, rows))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		want := "Full Name,Session,Recording Url,LinkedIn link,BlueSky link,Twitter link,Instagram link\n" +
			"Ada Lovelace,On Engines,,https://linkedin.com/in/ada,,,\n" +
			"Grace Hopper,Compilers,https://youtu.be/abc,,,https://x.com/grace,\n"
		assert.Equal(t, want, string(content))
	})

	t.Run("quotes fields containing commas", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "speakers.csv")
		rows := []domain.OutputRow{
			{FullName: "Ada Lovelace", SessionTitle: "Engines, Analytical and Otherwise"},
		}

		require.NoError(t, NewWriter().Write(path, rows))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), `"Engines, Analytical and Otherwise"`)
	})

	t.Run("empty row sequence still writes the header", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "speakers.csv")
		require.NoError(t, NewWriter().Write(path, nil))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "Full Name,Session,Recording Url,LinkedIn link,BlueSky link,Twitter link,Instagram link\n", string(content))
	})

	t.Run("unwritable destination is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "speakers.csv")
		err := NewWriter().Write(path, nil)
		require.Error(t, err)
		assert.ErrorContains(t, err, "failed to create output file")
	})
}
