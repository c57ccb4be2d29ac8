// Package menubar defines the editor's menu and renders it as a Wails
// application menu.
//
// Item identifiers are stable ASCII strings and are the only payload that
// reaches the UI when an item is activated. Labels are the Japanese strings
// the user sees.
package menubar

import (
	"fmt"

	"github.com/wailsapp/wails/v2/pkg/menu"
)

// Menu item identifiers.
const (
	FileNew       = "menu_file_new"
	FileOpen      = "menu_file_open"
	FileSave      = "menu_file_save"
	FileSaveAs    = "menu_file_save_as"
	FileExit      = "menu_file_exit"
	EditCut       = "menu_edit_cut"
	EditCopy      = "menu_edit_copy"
	EditPaste     = "menu_edit_paste"
	EditDelete    = "menu_edit_delete"
	EditSelectAll = "menu_edit_select_all"
	HelpAbout     = "menu_help_about"
)

// Item is a menu entry. A separator has no ID or label.
type Item struct {
	ID        string
	Label     string
	Separator bool
}

// Submenu is a top-level menu.
type Submenu struct {
	Label string
	Items []Item
}

// Menu is the full menu tree.
type Menu struct {
	Submenus []Submenu
}

func text(id, label string) Item {
	return Item{ID: id, Label: label}
}

func separator() Item {
	return Item{Separator: true}
}

// Default returns the editor menu.
func Default() Menu {
	return Menu{Submenus: []Submenu{
		{Label: "ファイル", Items: []Item{
			text(FileNew, "新規"),
			text(FileOpen, "開く"),
			text(FileSave, "上書き保存"),
			text(FileSaveAs, "名前を付けて保存"),
			separator(),
			text(FileExit, "終了"),
		}},
		{Label: "編集", Items: []Item{
			text(EditCut, "切り取り"),
			text(EditCopy, "コピー"),
			text(EditPaste, "貼り付け"),
			text(EditDelete, "削除"),
			separator(),
			text(EditSelectAll, "すべて選択"),
		}},
		{Label: "ヘルプ", Items: []Item{
			text(HelpAbout, "バージョン情報"),
		}},
	}}
}

// IDs returns every item identifier in menu order.
func (m Menu) IDs() []string {
	var ids []string
	for _, sub := range m.Submenus {
		for _, item := range sub.Items {
			if !item.Separator {
				ids = append(ids, item.ID)
			}
		}
	}
	return ids
}

// Lookup finds the item with the given identifier.
func (m Menu) Lookup(id string) (Item, bool) {
	for _, sub := range m.Submenus {
		for _, item := range sub.Items {
			if !item.Separator && item.ID == id {
				return item, true
			}
		}
	}
	return Item{}, false
}

// Validate checks that identifiers are unique and labels are present.
func (m Menu) Validate() error {
	seen := make(map[string]bool)
	for i, sub := range m.Submenus {
		if sub.Label == "" {
			return fmt.Errorf("submenu %d has no label", i)
		}
		for _, item := range sub.Items {
			if item.Separator {
				continue
			}
			if item.ID == "" || item.Label == "" {
				return fmt.Errorf("submenu %q has an item without id or label", sub.Label)
			}
			if seen[item.ID] {
				return fmt.Errorf("duplicate menu item id %q", item.ID)
			}
			seen[item.ID] = true
		}
	}
	return nil
}

// Build renders m as a Wails menu. Activating an item calls onActivate with
// that item's identifier.
func Build(m Menu, onActivate func(id string)) *menu.Menu {
	appMenu := menu.NewMenu()
	for _, sub := range m.Submenus {
		native := appMenu.AddSubmenu(sub.Label)
		for _, item := range sub.Items {
			if item.Separator {
				native.AddSeparator()
				continue
			}
			id := item.ID
			native.AddText(item.Label, nil, func(*menu.CallbackData) {
				onActivate(id)
			})
		}
	}
	return appMenu
}
