package buffer

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestByte(t *testing.T) {
	buf := New([]byte{0x89, 0xd8})

	b, err := buf.Byte(0)
	assert.NoError(t, err)
	assert.Equal(t, byte(0x89), b)

	b, err = buf.Byte(1)
	assert.NoError(t, err)
	assert.Equal(t, byte(0xd8), b)

	_, err = buf.Byte(2)
	assert.True(t, errors.Is(err, ErrOutOfRange))

	_, err = buf.Byte(-1)
	assert.True(t, errors.Is(err, ErrOutOfRange))
}

func TestWord(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		offset  int
		want    uint16
		wantErr bool
	}{
		{"little endian", []byte{0x00, 0x10}, 0, 0x1000, false},
		{"second word", []byte{0xa0, 0x34, 0x12}, 1, 0x1234, false},
		{"negative value", []byte{0xdb, 0xff}, 0, 0xffdb, false},
		{"last byte only", []byte{0xa0, 0x34}, 1, 0, true},
		{"empty buffer", nil, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := New(tt.data)
			w, err := buf.Word(tt.offset)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrOutOfRange))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, w)
		})
	}
}

func TestRangeError(t *testing.T) {
	buf := New([]byte{0x88})
	_, err := buf.Word(0)

	var rangeErr *RangeError
	assert.True(t, errors.As(err, &rangeErr))
	assert.Equal(t, 0, rangeErr.Offset)
	assert.Equal(t, 2, rangeErr.Size)
	assert.Equal(t, 1, rangeErr.Length)
}

func TestNewCopiesData(t *testing.T) {
	data := []byte{0x01, 0x02}
	buf := New(data)
	data[0] = 0xff

	b, err := buf.Byte(0)
	assert.NoError(t, err)
	assert.Equal(t, byte(0x01), b)
	assert.Equal(t, 2, buf.Len())
}

func TestBytes(t *testing.T) {
	buf := New([]byte{0xb8, 0x01, 0x00})

	data, err := buf.Bytes(0, 3)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0xb8, 0x01, 0x00}, data)

	_, err = buf.Bytes(1, 3)
	assert.Error(t, err)
}
