package freqtable

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

const (
	emptyMarker   = "**"
	deletedMarker = "#DEL#"
)

// Display writes every slot in array order, separated by spaces and
// terminated by a newline: "**" for an empty slot, "#DEL#" for a removed
// one and "[word, frequency]" for a stored word.
func (ft *FreqTable) Display(w io.Writer) error {
	bw := bufio.NewWriter(w)

	for i := range ft.slots {
		if i > 0 {
			bw.WriteByte(' ')
		}

		writeSlot(bw, &ft.slots[i])
	}

	bw.WriteByte('\n')

	return bw.Flush()
}

func (ft *FreqTable) String() string {
	var sb strings.Builder
	_ = ft.Display(&sb)

	return sb.String()
}

func writeSlot(bw *bufio.Writer, s *slot) {
	switch s.state {
	case slotEmpty:
		bw.WriteString(emptyMarker)
	case slotDeleted:
		bw.WriteString(deletedMarker)
	default:
		bw.WriteByte('[')
		bw.WriteString(s.key)
		bw.WriteString(", ")
		bw.WriteString(strconv.Itoa(s.freq))
		bw.WriteByte(']')
	}
}
