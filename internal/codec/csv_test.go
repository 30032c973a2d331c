package codec

import (
	"encoding/csv"
	"testing"

	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTasks() []models.Task {
	return []models.Task{
		{ID: 1, Title: "Buy milk", Description: "2% milk", Priority: models.Medium},
		{ID: 2, Title: "Pay rent", Description: "due 1st", Priority: models.Critical},
		{ID: 7, Title: "Quote \"this\"", Description: "a, b\nand c", Priority: models.Low, Completed: true},
		{ID: 4, Title: " padded ", Description: "ünïcødé ✓", Priority: models.High},
		{ID: 5, Title: "Windows notes", Description: "line1\r\nline2", Priority: models.Medium},
		{ID: 6, Title: "old\rmac", Description: "trailing\r", Priority: models.Low},
	}
}

func TestEncode_Format(t *testing.T) {
	out, err := Encode([]models.Task{
		{ID: 1, Title: "Buy milk", Description: "2% milk", Priority: models.Medium},
		{ID: 2, Title: "a,b", Description: "say \"hi\"", Priority: models.Low, Completed: true},
	})
	require.NoError(t, err)

	want := "id,title,description,priority,completed\n" +
		"1,Buy milk,2% milk,Medium,false\n" +
		"2,\"a,b\",\"say \"\"hi\"\"\",Low,true\n"
	assert.Equal(t, want, string(out))
}

func TestEncode_EmptyWritesHeaderOnly(t *testing.T) {
	out, err := Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "id,title,description,priority,completed\n", string(out))
}

func TestEncode_InvalidPriority(t *testing.T) {
	_, err := Encode([]models.Task{{ID: 1, Title: "t", Description: "d"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrFormat)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	tasks := sampleTasks()

	out, err := Encode(tasks)
	require.NoError(t, err)

	got, err := Decode(out)
	require.NoError(t, err)
	assert.Equal(t, tasks, got)
}

func TestEncodeDecode_KeepsCarriageReturns(t *testing.T) {
	tests := []struct {
		name        string
		description string
	}{
		{name: "crlf", description: "line1\r\nline2"},
		{name: "lone cr", description: "a\rb"},
		{name: "cr at end", description: "end\r"},
		{name: "cr with private rune", description: "x\ue000\r\ny"},
		{name: "cr next to quotes", description: "\"q\"\r\n\"r\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks := []models.Task{{ID: 1, Title: "t", Description: tt.description, Priority: models.Medium}}

			out, err := Encode(tasks)
			require.NoError(t, err)

			got, err := Decode(out)
			require.NoError(t, err)
			assert.Equal(t, tasks, got)
		})
	}
}

func TestDecode_CRLFRecordTerminators(t *testing.T) {
	in := "id,title,description,priority,completed\r\n" +
		"1,a,\"multi\r\nline\",High,false\r\n" +
		"2,b,plain,Low,true\r\n"

	got, err := Decode([]byte(in))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "multi\r\nline", got[0].Description)
	assert.Equal(t, "plain", got[1].Description)
	assert.True(t, got[1].Completed)
}

func TestDecode_Empty(t *testing.T) {
	for _, in := range []string{"", "\n", "id,title,description,priority,completed\n"} {
		got, err := Decode([]byte(in))
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	}
}

func TestDecode_PriorityCaseInsensitive(t *testing.T) {
	in := "id,title,description,priority,completed\n" +
		"1,a,b,low,false\n" +
		"2,a,b,Low,false\n" +
		"3,a,b,LOW,false\n"

	got, err := Decode([]byte(in))
	require.NoError(t, err)
	require.Len(t, got, 3)
	for _, task := range got {
		assert.Equal(t, models.Low, task.Priority)
	}
}

func TestDecode_WithoutPriorityColumn(t *testing.T) {
	in := "id,title,description,completed\n1,legacy,row,true\n"

	got, err := Decode([]byte(in))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.Task{ID: 1, Title: "legacy", Description: "row", Priority: models.DefaultPriority, Completed: true}, got[0])
}

func TestDecode_ReorderedHeader(t *testing.T) {
	in := "Completed,PRIORITY,title,id,description\nfalse,High,t,9,d\n"

	got, err := Decode([]byte(in))
	require.NoError(t, err)
	assert.Equal(t, []models.Task{{ID: 9, Title: "t", Description: "d", Priority: models.High}}, got)
}

func TestDecode_ByteOrderMark(t *testing.T) {
	in := "\ufeffid,title,description,priority,completed\n1,a,b,Low,false\n"

	got, err := Decode([]byte(in))
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestDecode_Malformed(t *testing.T) {
	const header = "id,title,description,priority,completed\n"

	tests := []struct {
		name    string
		in      string
		wantErr error
	}{
		{"unknown priority", header + "1,a,b,urgent,false\n", models.ErrFormat},
		{"non numeric id", header + "x,a,b,Low,false\n", ErrInvalidID},
		{"zero id", header + "0,a,b,Low,false\n", ErrInvalidID},
		{"negative id", header + "-3,a,b,Low,false\n", ErrInvalidID},
		{"non boolean completed", header + "1,a,b,Low,maybe\n", ErrInvalidCompleted},
		{"too few fields", header + "1,a,b,Low\n", csv.ErrFieldCount},
		{"too many fields", header + "1,a,b,Low,false,extra\n", csv.ErrFieldCount},
		{"duplicate id", header + "1,a,b,Low,false\n1,c,d,High,true\n", ErrDuplicateID},
		{"bare quote", header + "1,a\"b,c,Low,false\n", csv.ErrBareQuote},
		{"unknown column", "id,title,description,priority,completed,due\n", ErrUnknownColumn},
		{"duplicate column", "id,title,title,description,completed\n", ErrDuplicateColumn},
		{"missing column", "id,title,priority,completed\n", ErrMissingColumn},
		{"hex blob", "a3f09c1d2e\n", ErrUnknownColumn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.in))
			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, models.ErrFormat)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDecode_FailureAbortsWholeLoad(t *testing.T) {
	in := "id,title,description,priority,completed\n" +
		"1,good,row,Low,false\n" +
		"2,bad,row,urgent,false\n" +
		"3,good,row,Low,false\n"

	got, err := Decode([]byte(in))
	require.Error(t, err)
	assert.Nil(t, got)
	assert.Contains(t, err.Error(), "line 3")
}
