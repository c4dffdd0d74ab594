package memblock_test

import (
	"fmt"

	"github.com/cwbudde/algo-bytes/memblock"
)

func ExampleBlock() {
	b := memblock.FromBytes([]byte{0x10, 0x20, 0x30, 0x40})
	b.RemoveSection(1, 2)
	b.Append([]byte{0x50})

	fmt.Printf("% x\n", b.Bytes())
	fmt.Println(b.Len())

	// Output:
	// 10 40 50
	// 3
}

func ExampleBlock_ToBase64Text() {
	b := memblock.FromBytes([]byte{0x01, 0x02, 0x03})
	text := b.ToBase64Text()
	fmt.Println(text)

	decoded := memblock.New(0)
	if err := decoded.LoadFromBase64Text(text); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("% x\n", decoded.Bytes())

	// Output:
	// 3.AHv.
	// 01 02 03
}

func ExampleBlock_SetBitRange() {
	b := memblock.New(2)
	b.SetBitRange(4, 8, 0xab)

	fmt.Printf("% x\n", b.Bytes())
	fmt.Printf("%#x\n", b.GetBitRange(4, 8))

	// Output:
	// b0 0a
	// 0xab
}

func ExampleBlock_LoadFromHex() {
	b := memblock.New(0)
	b.LoadFromHex("1a2B3c")

	fmt.Printf("% x\n", b.Bytes())

	// Output:
	// 1a 2b 3c
}
