package fixedarray

/*

# Partially initialised fixed capacity storage

An Array owns a fixed number of slots, addressed by a linear index in
[0, capacity). Every slot is either live (it holds a value the array owns) or
vacant. Presence is tracked in a separate bitmap, one bit per slot, using the
same LSB0 bit order as the bloom bitsets:

	slot j  ->  byte j>>3, bit j&7 (bit 0 is the least significant bit)

The cell type needs no meaningful zero value. A vacant slot always holds the
zero value of T, so nothing it referenced is retained once a value is taken
out.

## Ownership

	Write(i, v)      vacant -> live, the array now owns v
	Replace(i, v)    any    -> live, a prior value is handed back to the caller
	Take(i)          live   -> vacant, the caller now owns the value
	Transplant(...)  moves a live slot into another array, the source is vacant
	DropInPlace(i)   live   -> vacant, the value is dropped
	Dealloc()        drops every slot that is still live and releases the slots

Drop semantics are opt in. A value implementing Dropper (directly, or through
a pointer to the slot) has Drop called exactly once when the array discards it.
Values handed back by Replace or Take, and values moved by Transplant, are
never dropped by the array.

Programming errors (reading outside the capacity range, taking from a vacant
slot, writing over a live slot) panic with the sentinel errors in this
package. The burden of knowing which slots are live is on the caller.
*/
