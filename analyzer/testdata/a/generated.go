// Code generated by hand. DO NOT EDIT.

package a

func generated(p *point) int {
	return p.x
}
