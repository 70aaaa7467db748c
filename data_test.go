package parser

// tests pairs packets with their wire frames. Both the encoder and the
// decoder tests walk this table, so every entry is a round trip. Data
// values are written the way the default serializer decodes them, with
// numbers as float64.
var tests = []struct {
	Name   string
	Packet Packet
	Frame  string
}{
	{"Connect",
		Packet{Connect, 0, false, "/", nil},
		"0",
	},
	{"ConnectNamespace",
		Packet{Connect, 0, false, "/admin", nil},
		"0/admin,",
	},
	{"ConnectData",
		Packet{Connect, 0, false, "/", map[string]interface{}{"token": "a"}},
		`0{"token":"a"}`,
	},
	{"Disconnect",
		Packet{Disconnect, 0, false, "/", nil},
		"1",
	},
	{"DisconnectNamespace",
		Packet{Disconnect, 0, false, "/admin", nil},
		"1/admin,",
	},
	{"Event",
		Packet{Event, 0, false, "/", []interface{}{"hello"}},
		`2["hello"]`,
	},
	{"EventID",
		Packet{Event, 13, true, "/", []interface{}{"hello"}},
		`213["hello"]`,
	},
	{"EventIDZero",
		Packet{Event, 0, true, "/", []interface{}{"hello"}},
		`20["hello"]`,
	},
	{"EventNamespaceID",
		Packet{Event, 456, true, "/admin", []interface{}{"project:delete", float64(123)}},
		`2/admin,456["project:delete",123]`,
	},
	{"Ack",
		Packet{Ack, 13, true, "/", []interface{}{"ok"}},
		`313["ok"]`,
	},
	{"Error",
		Packet{Error, 0, false, "/", "parser error"},
		`4"parser error"`,
	},
	{"ErrorObject",
		Packet{Error, 0, false, "/", map[string]interface{}{}},
		"4{}",
	},
}
