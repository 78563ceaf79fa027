package fixture

import (
	"fmt"
	"strings"
	"testing"

	"github.com/barnybug/halmock/mock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var yml = `
reset: [0]
temperature: "01 9a"
calibration:
  - 0x6b
  - 112
`

func ExampleOpenRaw() {
	fixtures, _ := OpenRaw([]byte(yml))
	fmt.Println(fixtures.Names())
	fmt.Printf("% x\n", fixtures["temperature"])
	// Output:
	// [calibration reset temperature]
	// 01 9a
}

func TestOpen(t *testing.T) {
	fixtures, err := Open("testdata/tmp102.yml")
	require.NoError(t, err)
	assert.Equal(t, []string{"config", "empty", "negative", "temperature"}, fixtures.Names())
	assert.Equal(t, Bytes{0x60, 0xa0}, fixtures["config"])
	assert.Equal(t, Bytes{0x19, 0x00}, fixtures["temperature"])
	assert.Equal(t, Bytes{0xe7, 0x00}, fixtures["negative"])
	assert.Empty(t, fixtures["empty"])
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open("testdata/missing.yml")
	assert.Error(t, err)
}

func TestOpenReader(t *testing.T) {
	fixtures, err := OpenReader(strings.NewReader(yml))
	require.NoError(t, err)
	assert.Equal(t, Bytes{0x6b, 0x70}, fixtures["calibration"])
	assert.Equal(t, Bytes{0}, fixtures["reset"])
}

func TestOpenRawErrors(t *testing.T) {
	for _, data := range []string{
		"a: [256]",
		"a: [-1]",
		"a: \"0g\"",
		"a: \"123\"",
		"a: {b: 1}",
		"a: [x]",
		"a: 12",
		"a: 255",
		"a: 1900",
		"a: 0x12",
		"a: true",
		"- 1",
	} {
		_, err := OpenRaw([]byte(data))
		assert.Error(t, err, data)
	}
}

func TestOpenRawNumberForms(t *testing.T) {
	fixtures, err := OpenRaw([]byte(`
list: [12]
quoted: "12"
`))
	require.NoError(t, err)
	assert.Equal(t, Bytes{12}, fixtures["list"])
	assert.Equal(t, Bytes{0x12}, fixtures["quoted"])

	_, err = OpenRaw([]byte("a: 12"))
	assert.EqualError(t, err, "expected a list of bytes or a quoted hex string, got 12")
}

func TestParseHex(t *testing.T) {
	for s, expected := range map[string]Bytes{
		"":              {},
		"01":            {0x01},
		"019a":          {0x01, 0x9a},
		"01 9a":         {0x01, 0x9a},
		"0x01, 0x9A":    {0x01, 0x9a},
		"01:9a:ff":      {0x01, 0x9a, 0xff},
		"0X7f\n0x80\t1": nil,
	} {
		b, err := ParseHex(s)
		if expected == nil {
			assert.Error(t, err, s)
			continue
		}
		assert.NoError(t, err, s)
		assert.Equal(t, expected, b, s)
	}
}

func TestGet(t *testing.T) {
	fixtures, err := OpenRaw([]byte(yml))
	require.NoError(t, err)

	b, err := fixtures.Get("reset")
	assert.NoError(t, err)
	assert.Equal(t, Bytes{0}, b)

	_, err = fixtures.Get("humidity")
	assert.True(t, errors.Is(err, ErrMissing))
	assert.Equal(t, "humidity: fixture missing", err.Error())
}

func TestLoad(t *testing.T) {
	fixtures, err := Open("testdata/tmp102.yml")
	require.NoError(t, err)

	i2c := mock.NewI2C()
	require.NoError(t, fixtures.Load(i2c, "temperature"))
	buf := make([]byte, 3)
	assert.NoError(t, i2c.WriteRead(0x48, []byte{0x00}, buf))
	assert.Equal(t, []byte{0x19, 0x00, 0x00}, buf)

	assert.Error(t, fixtures.Load(i2c, "humidity"))
	assert.Equal(t, []byte{0x19, 0x00}, i2c.ReadData())
}
