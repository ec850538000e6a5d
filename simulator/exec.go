// Package simulator adapts an external simulator process to the dut
// contract. The protocol is line oriented with one request in flight:
// adders send "<a> <b> <carryIn>" and read "<sum> <carryOut>",
// multipliers send "<a> <b>" and read "<product>", operands and results
// hex-encoded, carry bits as 0 or 1.
package simulator

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"os/exec"
	"strconv"
	"strings"
)

type process struct {
	cmd *exec.Cmd
	in  io.WriteCloser
	out *bufio.Scanner
}

func startProcess(bin string, args ...string) (*process, error) {
	cmd := exec.Command(bin, args...)
	in, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("simulator stdin: %w", err)
	}
	out, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("simulator stdout: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start simulator %s: %w", bin, err)
	}
	return &process{cmd: cmd, in: in, out: bufio.NewScanner(out)}, nil
}

func (p *process) roundTrip(req string) (string, error) {
	if _, err := io.WriteString(p.in, req+"\n"); err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	if !p.out.Scan() {
		if err := p.out.Err(); err != nil {
			return "", fmt.Errorf("read response: %w", err)
		}
		return "", fmt.Errorf("simulator closed its output stream")
	}
	return strings.TrimSpace(p.out.Text()), nil
}

func (p *process) close() error {
	p.in.Close()
	return p.cmd.Wait()
}

// ExecAdder drives an adder model hosted by an external simulator binary.
type ExecAdder struct {
	p     *process
	width int
}

func NewExecAdder(width int, bin string, args ...string) (*ExecAdder, error) {
	p, err := startProcess(bin, args...)
	if err != nil {
		return nil, err
	}
	return &ExecAdder{p: p, width: width}, nil
}

func (e *ExecAdder) Width() int { return e.width }

func (e *ExecAdder) Evaluate(a, b uint64, carryIn bool) (uint64, bool, error) {
	cin := 0
	if carryIn {
		cin = 1
	}
	resp, err := e.p.roundTrip(fmt.Sprintf("%x %x %d", a, b, cin))
	if err != nil {
		return 0, false, err
	}
	fields := strings.Fields(resp)
	if len(fields) != 2 {
		return 0, false, fmt.Errorf("malformed adder response %q", resp)
	}
	sum, err := strconv.ParseUint(fields[0], 16, 64)
	if err != nil {
		return 0, false, fmt.Errorf("malformed sum in response %q: %w", resp, err)
	}
	switch fields[1] {
	case "0":
		return sum, false, nil
	case "1":
		return sum, true, nil
	default:
		return 0, false, fmt.Errorf("malformed carry-out in response %q", resp)
	}
}

func (e *ExecAdder) Close() error { return e.p.close() }

// ExecMultiplier drives a multiplier model hosted by an external simulator
// binary.
type ExecMultiplier struct {
	p      *process
	wa, wb int
}

func NewExecMultiplier(widthA, widthB int, bin string, args ...string) (*ExecMultiplier, error) {
	p, err := startProcess(bin, args...)
	if err != nil {
		return nil, err
	}
	return &ExecMultiplier{p: p, wa: widthA, wb: widthB}, nil
}

func (e *ExecMultiplier) WidthA() int { return e.wa }
func (e *ExecMultiplier) WidthB() int { return e.wb }

func (e *ExecMultiplier) Evaluate(a, b uint64) (*big.Int, error) {
	resp, err := e.p.roundTrip(fmt.Sprintf("%x %x", a, b))
	if err != nil {
		return nil, err
	}
	product, ok := new(big.Int).SetString(resp, 16)
	if !ok || product.Sign() < 0 {
		return nil, fmt.Errorf("malformed multiplier response %q", resp)
	}
	return product, nil
}

func (e *ExecMultiplier) Close() error { return e.p.close() }
