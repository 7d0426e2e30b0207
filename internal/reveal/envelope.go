package reveal

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/btcsuite/btcd/txscript"
)

// MetaMediaType is the content type of the metadata envelope.
const MetaMediaType = "application/json;charset=utf-8"

var ordTag = []byte("ord")

// scriptWriter appends opcodes and minimal pushes. txscript.ScriptBuilder
// refuses scripts over 10 000 bytes, which inscription leaves routinely exceed.
type scriptWriter struct {
	buf bytes.Buffer
}

func (w *scriptWriter) op(op byte) {
	w.buf.WriteByte(op)
}

func (w *scriptWriter) push(data []byte) {
	n := len(data)
	switch {
	case n == 0:
		w.buf.WriteByte(txscript.OP_0)
		return
	case n == 1 && data[0] >= 1 && data[0] <= 16:
		w.buf.WriteByte(txscript.OP_1 - 1 + data[0])
		return
	case n == 1 && data[0] == 0x81:
		w.buf.WriteByte(txscript.OP_1NEGATE)
		return
	case n < txscript.OP_PUSHDATA1:
		w.buf.WriteByte(byte(n))
	case n <= 0xff:
		w.buf.WriteByte(txscript.OP_PUSHDATA1)
		w.buf.WriteByte(byte(n))
	case n <= 0xffff:
		w.buf.WriteByte(txscript.OP_PUSHDATA2)
		var l [2]byte
		binary.LittleEndian.PutUint16(l[:], uint16(n))
		w.buf.Write(l[:])
	default:
		w.buf.WriteByte(txscript.OP_PUSHDATA4)
		var l [4]byte
		binary.LittleEndian.PutUint32(l[:], uint32(n))
		w.buf.Write(l[:])
	}
	w.buf.Write(data)
}

// envelope writes OP_FALSE OP_IF "ord" 1 <mediaType> 0 <chunks...> OP_ENDIF.
func (w *scriptWriter) envelope(mediaType string, body []byte) {
	w.op(txscript.OP_FALSE)
	w.op(txscript.OP_IF)
	w.push(ordTag)
	w.push([]byte{1})
	w.push([]byte(mediaType))
	w.op(txscript.OP_0)
	for start := 0; start < len(body); start += txscript.MaxScriptElementSize {
		end := min(start+txscript.MaxScriptElementSize, len(body))
		w.push(body[start:end])
	}
	w.op(txscript.OP_ENDIF)
}

// InscriptionScript returns the tapscript leaf revealing content under
// xonlyKey. A non-empty meta is inscribed as a second JSON envelope.
func InscriptionScript(xonlyKey, content []byte, mediaType string, meta map[string]any) ([]byte, error) {
	w := &scriptWriter{}
	w.push(xonlyKey)
	w.op(txscript.OP_CHECKSIG)
	w.envelope(mediaType, content)
	if len(meta) > 0 {
		raw, err := json.Marshal(meta)
		if err != nil {
			return nil, fmt.Errorf("encode meta: %w", err)
		}
		w.envelope(MetaMediaType, raw)
	}
	return w.buf.Bytes(), nil
}

// RecoveryScript is the key-only leaf that lets the key holder sweep a
// commit output without revealing.
func RecoveryScript(xonlyKey []byte) ([]byte, error) {
	return txscript.NewScriptBuilder().
		AddData(xonlyKey).
		AddOp(txscript.OP_CHECKSIG).
		Script()
}
