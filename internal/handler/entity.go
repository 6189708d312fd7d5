package handler

import (
	"strings"

	"github.com/corvid/corvid/internal/core/ecs"
	"github.com/corvid/corvid/internal/net"
	"github.com/corvid/corvid/internal/net/packet"
)

// HandleEntityList processes C_OPCODE_ENTITY_LIST.
// Format: [opcode][component filter\0][4B limit]
func HandleEntityList(sess *net.Session, r *packet.Reader, deps *Deps) {
	filter := r.ReadS()
	limit := int(r.ReadD())

	rows, total, err := deps.Inspector.Entities(filter, limit)
	if err != nil {
		sendError(sess, err.Error())
		return
	}

	w := packet.NewWriterWithOpcode(packet.S_OPCODE_ENTITY_LIST)
	w.WriteD(int32(total))
	w.WriteH(uint16(len(rows)))
	for _, row := range rows {
		w.WriteQ(uint64(row.ID))
		w.WriteS(strings.Join(row.Components, ","))
	}
	sess.Send(w.Bytes())
}

// HandleEntityDetail processes C_OPCODE_ENTITY_DETAIL.
// Format: [opcode][8B entity id]
func HandleEntityDetail(sess *net.Session, r *packet.Reader, deps *Deps) {
	id := ecs.EntityID(r.ReadQ())

	detail, err := deps.Inspector.Detail(id)
	if err != nil {
		sendError(sess, err.Error())
		return
	}

	w := packet.NewWriterWithOpcode(packet.S_OPCODE_ENTITY_DETAIL)
	w.WriteQ(uint64(detail.ID))
	w.WriteH(uint16(len(detail.Components)))
	for _, c := range detail.Components {
		w.WriteS(c.Name)
		w.WriteH(uint16(len(c.Fields)))
		for _, f := range c.Fields {
			w.WriteS(f.Name)
			w.WriteS(f.Type)
			w.WriteS(f.Value)
		}
	}
	sess.Send(w.Bytes())
}

// HandleComponents processes C_OPCODE_COMPONENTS.
func HandleComponents(sess *net.Session, r *packet.Reader, deps *Deps) {
	types := deps.Inspector.ComponentTypes()
	w := packet.NewWriterWithOpcode(packet.S_OPCODE_COMPONENT_LIST)
	w.WriteH(uint16(len(types)))
	for _, t := range types {
		w.WriteS(t.Name)
		w.WriteD(int32(t.Count))
	}
	sess.Send(w.Bytes())
}

// HandleResources processes C_OPCODE_RESOURCES.
func HandleResources(sess *net.Session, r *packet.Reader, deps *Deps) {
	resources := deps.Inspector.ResourceList()
	w := packet.NewWriterWithOpcode(packet.S_OPCODE_RESOURCE_LIST)
	w.WriteH(uint16(len(resources)))
	for _, res := range resources {
		w.WriteS(res.Name)
		w.WriteS(res.Value)
	}
	sess.Send(w.Bytes())
}

// HandleEvents processes C_OPCODE_EVENTS.
func HandleEvents(sess *net.Session, r *packet.Reader, deps *Deps) {
	stats := deps.Inspector.EventStats()
	w := packet.NewWriterWithOpcode(packet.S_OPCODE_EVENT_STATS)
	w.WriteH(uint16(len(stats)))
	for _, s := range stats {
		w.WriteS(s.Name)
		w.WriteQ(s.LastTick)
		w.WriteQ(s.Total)
	}
	sess.Send(w.Bytes())
}
