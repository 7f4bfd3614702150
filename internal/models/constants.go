package models

// DefaultColumnName is the column used for items without a status and for boards
// that declare nothing at all.
const DefaultColumnName = "Todo"

// DefaultFenceLanguage is the fenced code block info string that marks a kanban block.
const DefaultFenceLanguage = "kanban"
