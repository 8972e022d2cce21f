package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Спецификация
	SpecInfo            Code = 1000
	SpecUnknownChar     Code = 1001
	SpecEmpty           Code = 1002
	SpecShuffleRepeated Code = 1003

	// Списки слов и символов
	ListInfo         Code = 2000
	ListEmptyWords   Code = 2001
	ListEmptySymbols Code = 2002
	ListDuplicate    Code = 2003
	ListNonASCII     Code = 2004

	// Ввод-вывод
	IOLoadFileError Code = 3001
)

var (
	codeDescription = map[Code]string{
		UnknownCode:         "Unknown error",
		SpecInfo:            "Spec information",
		SpecUnknownChar:     "Unrecognized spec character",
		SpecEmpty:           "Spec produces nothing",
		SpecShuffleRepeated: "Repeated shuffle marker",
		ListInfo:            "List information",
		ListEmptyWords:      "No words available",
		ListEmptySymbols:    "No symbols available",
		ListDuplicate:       "Duplicate list entry",
		ListNonASCII:        "Non-ASCII list entry",
		IOLoadFileError:     "I/O load file error",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("SPC%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("LST%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
