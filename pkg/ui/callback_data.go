package ui

import (
	"errors"
	"strconv"
	"strings"
)

const (
	CallbackPrefix     = "d:"
	MaxCallbackDataLen = 64
)

type Screen string

const (
	ScreenMenu     Screen = "menu"
	ScreenCategory Screen = "cat"
)

// Action is a decoded dua-navigation callback: either the category menu
// or one dua inside a category.
type Action struct {
	Screen   Screen
	Category string
	Index    int
}

var (
	errInvalidPrefix       = errors.New("invalid callback prefix")
	errInvalidAction       = errors.New("invalid callback action")
	errInvalidCategory     = errors.New("invalid callback category")
	errInvalidIndex        = errors.New("invalid callback index")
	errCallbackDataTooLong = errors.New("callback data too long")
)

func BuildMenuCallback() (string, error) {
	return validateCallbackData(CallbackPrefix + string(ScreenMenu))
}

func BuildCategoryCallback(category string, index int) (string, error) {
	if category == "" || strings.Contains(category, ":") {
		return "", errInvalidCategory
	}
	if index < 0 {
		return "", errInvalidIndex
	}
	data := CallbackPrefix + string(ScreenCategory) + ":" + category + ":" + strconv.Itoa(index)
	return validateCallbackData(data)
}

func ParseCallbackData(data string) (Action, error) {
	if data == "" {
		return Action{}, errInvalidAction
	}
	if len(data) > MaxCallbackDataLen {
		return Action{}, errCallbackDataTooLong
	}
	if !strings.HasPrefix(data, CallbackPrefix) {
		return Action{}, errInvalidPrefix
	}

	parts := strings.Split(data, ":")
	if len(parts) < 2 || parts[0] != "d" {
		return Action{}, errInvalidPrefix
	}

	switch len(parts) {
	case 2:
		if Screen(parts[1]) != ScreenMenu {
			return Action{}, errInvalidAction
		}
		return Action{Screen: ScreenMenu}, nil
	case 4:
		if Screen(parts[1]) != ScreenCategory {
			return Action{}, errInvalidAction
		}
		if parts[2] == "" {
			return Action{}, errInvalidCategory
		}
		index, err := strconv.Atoi(parts[3])
		if err != nil || index < 0 {
			return Action{}, errInvalidIndex
		}
		return Action{Screen: ScreenCategory, Category: parts[2], Index: index}, nil
	default:
		return Action{}, errInvalidAction
	}
}

func validateCallbackData(data string) (string, error) {
	if len(data) > MaxCallbackDataLen {
		return "", errCallbackDataTooLong
	}
	return data, nil
}
