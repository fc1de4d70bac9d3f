package client

// productsQuery pages through the product catalog. Field names and the
// pageInfo block are fixed by the Admin API schema.
const productsQuery = `query ProductsQuery($cursor: String, $pageSize: Int!) {
    products(first: $pageSize, after: $cursor) {
        edges { node { id title handle descriptionHtml vendor productType images(first: 1) { edges { node { url } } } variants(first: 10) { edges { node { price inventoryQuantity sku image { url } } } } } }
        pageInfo { hasNextPage endCursor }
    }
}`
