package main

import (
	"bufio"
	"flag"
	"fmt"
	gonet "net"
	"os"
	"strings"
	"time"

	"github.com/corvid/corvid/internal/net"
	"github.com/corvid/corvid/internal/net/packet"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:7777", "corvidd console address")
	password := flag.String("password", "", "operator password")
	flag.Parse()

	if err := run(*addr, *password); err != nil {
		fmt.Fprintln(os.Stderr, "corvidctl:", err)
		os.Exit(1)
	}
}

func run(addr, password string) error {
	conn, err := gonet.DialTimeout("tcp", addr, 5*time.Second)
	if err != nil {
		return fmt.Errorf("connect %s: %w", addr, err)
	}
	defer conn.Close()

	hello, err := net.ReadFrame(conn)
	if err != nil {
		return fmt.Errorf("read hello: %w", err)
	}
	r := packet.NewReader(hello)
	if r.Opcode() != packet.S_OPCODE_HELLO {
		return fmt.Errorf("unexpected opcode %d, want hello", r.Opcode())
	}
	version := r.ReadH()
	name := r.ReadS()
	build := r.ReadS()
	if version != net.ProtocolVersion {
		return fmt.Errorf("protocol version %d, client speaks %d", version, net.ProtocolVersion)
	}
	fmt.Printf("connected to %s (%s)\n", name, build)

	if err := authenticate(conn, password); err != nil {
		return err
	}

	return repl(conn)
}

func authenticate(conn gonet.Conn, password string) error {
	w := packet.NewWriterWithOpcode(packet.C_OPCODE_AUTH)
	w.WriteS("corvidctl")
	w.WriteS(password)
	if err := net.WriteFrame(conn, w.Bytes()); err != nil {
		return fmt.Errorf("send auth: %w", err)
	}

	payload, err := net.ReadFrame(conn)
	if err != nil {
		return fmt.Errorf("read auth result: %w", err)
	}
	r := packet.NewReader(payload)
	if r.Opcode() != packet.S_OPCODE_AUTH_RESULT {
		return fmt.Errorf("unexpected opcode %d, want auth result", r.Opcode())
	}
	if code := r.ReadC(); code != 0 {
		return fmt.Errorf("authentication rejected (code %d)", code)
	}
	return nil
}

func repl(conn gonet.Conn) error {
	stdin := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !stdin.Scan() {
			break
		}
		line := strings.TrimSpace(stdin.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}

		w := packet.NewWriterWithOpcode(packet.C_OPCODE_EXEC)
		w.WriteS(line)
		if err := net.WriteFrame(conn, w.Bytes()); err != nil {
			return fmt.Errorf("send command: %w", err)
		}
		if err := printResponse(conn); err != nil {
			return err
		}
	}

	w := packet.NewWriterWithOpcode(packet.C_OPCODE_QUIT)
	net.WriteFrame(conn, w.Bytes())
	return stdin.Err()
}

func printResponse(conn gonet.Conn) error {
	payload, err := net.ReadFrame(conn)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	r := packet.NewReader(payload)
	switch r.Opcode() {
	case packet.S_OPCODE_TEXT:
		n := int(r.ReadH())
		for i := 0; i < n; i++ {
			fmt.Println(r.ReadS())
		}
	case packet.S_OPCODE_ERROR:
		fmt.Println("error:", r.ReadS())
	default:
		fmt.Printf("unhandled opcode %d (%d bytes)\n", r.Opcode(), len(payload))
	}
	return nil
}
