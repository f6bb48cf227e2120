package common

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

var ErrUnknownCodec = NewError("unknown_codec", "Unknown codec")

const (
	CodecJSON    = 0
	CodecMsgpack = 1
)

/*CodecForFile - pick the codec from the file extension, .msgpack and .mp select msgpack, everything else json */
func CodecForFile(path string) int {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".msgpack", ".mp":
		return CodecMsgpack
	default:
		return CodecJSON
	}
}

/*WriteJSON - writes the entity json to a stream */
func WriteJSON(w io.Writer, entity interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(entity)
}

/*WriteMsgpack - writes the entity msgpack to a stream, json tags name the fields */
func WriteMsgpack(w io.Writer, entity interface{}) error {
	encoder := msgpack.NewEncoder(w)
	encoder.SetCustomStructTag("json")
	return encoder.Encode(entity)
}

/*ReadJSON - read entity json from a stream */
func ReadJSON(r io.Reader, entity interface{}) error {
	return json.NewDecoder(r).Decode(entity)
}

/*ReadMsgpack - read entity msgpack from a stream */
func ReadMsgpack(r io.Reader, entity interface{}) error {
	decoder := msgpack.NewDecoder(r)
	decoder.SetCustomStructTag("json")
	return decoder.Decode(entity)
}

/*Write - write the entity with the given codec */
func Write(w io.Writer, codec int, entity interface{}) error {
	switch codec {
	case CodecJSON:
		return WriteJSON(w, entity)
	case CodecMsgpack:
		return WriteMsgpack(w, entity)
	default:
		return NewErrorf(ErrUnknownCodec.Code, "unknown codec: %v", codec)
	}
}

/*Read - read the entity with the given codec */
func Read(r io.Reader, codec int, entity interface{}) error {
	switch codec {
	case CodecJSON:
		return ReadJSON(r, entity)
	case CodecMsgpack:
		return ReadMsgpack(r, entity)
	default:
		return NewErrorf(ErrUnknownCodec.Code, "unknown codec: %v", codec)
	}
}

/*FromJSON - read data into an entity */
func FromJSON(data interface{}, entity interface{}) error {
	switch jsondata := data.(type) {
	case []byte:
		return json.Unmarshal(jsondata, entity)
	case string:
		return json.Unmarshal([]byte(jsondata), entity)
	case io.Reader:
		return json.NewDecoder(jsondata).Decode(entity)
	default:
		return NewError("unknown_data_type", fmt.Sprintf("unknown data type for reading entity from json: %T, %v", data, data))
	}
}
