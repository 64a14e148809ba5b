// SPDX-FileCopyrightText: 2025 Terraforge Authors
// SPDX-License-Identifier: AGPL-3.0-or-later

package editor

import (
	"reflect"
	"unsafe"

	jsoniter "github.com/json-iterator/go"
)

// Make sure register functions get run first
var json = func() jsoniter.API {
	neverEmpty := func(pointer unsafe.Pointer) bool { return false }

	jsoniter.RegisterTypeEncoderFunc(reflect.TypeOf(Message{}).String(), encodeMessage, neverEmpty)
	jsoniter.RegisterTypeDecoderFunc(reflect.TypeOf(Message{}).String(), decodeMessage)

	return jsoniter.Config{
		MarshalFloatWith6Digits:       true,
		EscapeHTML:                    false,
		SortMapKeys:                   true,
		ObjectFieldMustBeSimpleString: true,
		CaseSensitive:                 true,
	}.Froze()
}()

func encodeMessage(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	message := (*Message)(ptr)
	stream.WriteVal(message.messageJSON())
}

// envelope defers decoding of the payload until the type is known.
type envelope struct {
	Type messageType         `json:"type"`
	Data jsoniter.RawMessage `json:"data"`
}

func decodeMessage(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	var env envelope
	iter.ReadVal(&env)
	if iter.Error != nil {
		return
	}

	inboundType, ok := inboundMessageTypes[env.Type]
	if !ok {
		(*Message)(ptr).Data = InvalidInbound{messageType: env.Type}
		return
	}

	in := reflect.New(inboundType).Interface()
	if len(env.Data) > 0 {
		subIter := iter.Pool().BorrowIterator(env.Data)
		subIter.ReadVal(in)
		err := subIter.Error
		iter.Pool().ReturnIterator(subIter)
		if err != nil {
			iter.Error = err
			return
		}
	}

	(*Message)(ptr).Data = reflect.Indirect(reflect.ValueOf(in)).Interface()
}
