package packet

// Client opcodes (console client to server).
const (
	C_OPCODE_AUTH          byte = 1
	C_OPCODE_PING          byte = 2
	C_OPCODE_MODULES       byte = 3
	C_OPCODE_EXEC          byte = 4
	C_OPCODE_PROF_SUMMARY  byte = 5
	C_OPCODE_PROF_MONITOR  byte = 6
	C_OPCODE_ENTITY_LIST   byte = 7
	C_OPCODE_ENTITY_DETAIL byte = 8
	C_OPCODE_COMPONENTS    byte = 9
	C_OPCODE_RESOURCES     byte = 10
	C_OPCODE_EVENTS        byte = 11
	C_OPCODE_RENDER_STATS  byte = 12
	C_OPCODE_RENDER_ASSETS byte = 13
	C_OPCODE_RENDER_TOGGLE byte = 14
	C_OPCODE_CAPTURE       byte = 15
	C_OPCODE_QUIT          byte = 16
)

// Server opcodes (server to console client).
const (
	S_OPCODE_HELLO          byte = 128
	S_OPCODE_AUTH_RESULT    byte = 129
	S_OPCODE_PONG           byte = 130
	S_OPCODE_MODULE_LIST    byte = 131
	S_OPCODE_TEXT           byte = 132
	S_OPCODE_ERROR          byte = 133
	S_OPCODE_PROF_SUMMARY   byte = 134
	S_OPCODE_PROF_MONITOR   byte = 135
	S_OPCODE_ENTITY_LIST    byte = 136
	S_OPCODE_ENTITY_DETAIL  byte = 137
	S_OPCODE_COMPONENT_LIST byte = 138
	S_OPCODE_RESOURCE_LIST  byte = 139
	S_OPCODE_EVENT_STATS    byte = 140
	S_OPCODE_RENDER_STATS   byte = 141
	S_OPCODE_ASSET_LIST     byte = 142
	S_OPCODE_CAPTURE_STATE  byte = 143
)
