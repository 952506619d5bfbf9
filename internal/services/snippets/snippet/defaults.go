package snippet

// DefaultHTML is rendered when no usable markup is supplied.
const DefaultHTML = `
<h1 class="revertable">Hello, World!</h1>
<button onClick="button()">press me </button>
`

// DefaultCSS is rendered when no usable stylesheet is supplied.
const DefaultCSS = `h1 { color: blue; }`

// DefaultJS is rendered when no usable script is supplied. It reverses the
// text of the h1.revertable heading that DefaultHTML renders.
const DefaultJS = `
function button() {
    const element = document.querySelector('h1.revertable');
    if (element) {
    const text = element.textContent;
    element.textContent = text.split('').reverse().join('');
    }
    console.log("reverted!");
}
`
