package records

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	values, err := Decode(bytes.NewReader([]byte{1, 0, 0, 0, 0x78, 0x56, 0x34, 0x12}))
	assert.NoError(err)
	assert.Equal([]uint32{1, 0x12345678}, values)

	_, err = Decode(bytes.NewReader([]byte{1, 2, 3, 4, 5}))
	assert.ErrorIs(err, ErrRecordTruncated)

	values, err = Decode(bytes.NewReader(nil))
	assert.NoError(err)
	assert.Empty(values)
}

func TestEncode(t *testing.T) {
	assert := assert.New(t)

	buf := &bytes.Buffer{}
	err := Encode(buf, []uint32{0xcafe, 0x01020304})
	assert.NoError(err)
	assert.Equal([]byte{0xfe, 0xca, 0, 0, 4, 3, 2, 1}, buf.Bytes())

	values, err := Decode(buf)
	assert.NoError(err)
	assert.Equal([]uint32{0xcafe, 0x01020304}, values)
}

func TestEval(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		Expr   string
		Values []uint32
	}{
		{"range(1, 9)", []uint32{1, 2, 3, 4, 5, 6, 7, 8}},
		{"[n * n for n in range(4)]", []uint32{0, 1, 4, 9}},
		{"[0xffffffff, 0]", []uint32{0xffffffff, 0}},
		{"(7, 8)", []uint32{7, 8}},
		{"[]", nil},
	}

	for _, tc := range table {
		values, err := Eval(tc.Expr)
		assert.NoError(err, tc.Expr)
		assert.Equal(tc.Values, values, tc.Expr)
	}
}

func TestEval_Invalid(t *testing.T) {
	assert := assert.New(t)

	_, err := Eval("[1, 2")
	assert.Error(err)

	_, err = Eval("42")
	assert.Equal(ErrExpression("42"), err)

	_, err = Eval(`["a"]`)
	assert.Equal(ErrExpression(`["a"]`), err)

	_, err = Eval("[-1]")
	assert.ErrorIs(err, ErrRecordValue)

	_, err = Eval("[1 << 32]")
	assert.ErrorIs(err, ErrRecordValue)
}

func TestTestTable(t *testing.T) {
	assert := assert.New(t)

	assert.Len(TestTable, 2000)
	assert.Equal(uint32(0xee431a62), TestTable[0])
	assert.Equal(uint32(0xfca0f08d), TestTable[1999])
}
