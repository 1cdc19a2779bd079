package wal

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Seq  int    `json:"seq"`
	Note string `json:"note"`
}

func TestWALRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wal.log")

	w, err := NewWAL(path)
	require.NoError(t, err)

	for i := 1; i <= 3; i++ {
		require.NoError(t, w.Write(record{Seq: i, Note: "op"}))
	}
	require.NoError(t, w.Flush())
	require.NoError(t, w.Close())

	// 重新開啟後從頭讀回
	w2, err := NewWAL(path)
	require.NoError(t, err)
	defer w2.Close()

	var got []record
	err = w2.ReadAll(func(jsonRaw []byte) error {
		var r record
		if err := json.Unmarshal(jsonRaw, &r); err != nil {
			return err
		}
		got = append(got, r)
		return nil
	})
	require.NoError(t, err)

	require.Len(t, got, 3)
	for i, r := range got {
		assert.Equal(t, i+1, r.Seq)
	}
}

func TestWALAppendAfterRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wal.log")

	w, err := NewWAL(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.Write(record{Seq: 1}))
	require.NoError(t, w.ReadAll(func([]byte) error { return nil }))

	// O_APPEND 保證讀取後的寫入仍然落在檔尾
	require.NoError(t, w.Write(record{Seq: 2}))

	count := 0
	require.NoError(t, w.ReadAll(func([]byte) error {
		count++
		return nil
	}))
	assert.Equal(t, 2, count)
}

func TestWALEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wal.log")

	w, err := NewWAL(path)
	require.NoError(t, err)
	defer w.Close()

	count := 0
	require.NoError(t, w.ReadAll(func([]byte) error {
		count++
		return nil
	}))
	assert.Zero(t, count)
}
